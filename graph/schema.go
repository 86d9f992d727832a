package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/19900531-kt/blog/graph/model"
)

// dateTimeType is the RFC3339 timestamp scalar. Malformed input makes
// ParseValue/ParseLiteral return nil, which graphql-go reports to the caller
// as an input coercion error instead of silently defaulting.
var dateTimeType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "An RFC3339 timestamp string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case model.DateTime:
			return v.String()
		case *model.DateTime:
			return v.String()
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		dt, err := model.ParseDateTime(s)
		if err != nil {
			return nil
		}
		return dt
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		sv, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		dt, err := model.ParseDateTime(sv.Value)
		if err != nil {
			return nil
		}
		return dt
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"avatarUrl": &graphql.Field{Type: graphql.String},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"author":      &graphql.Field{Type: graphql.NewNonNull(userType)},
		"body":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"tags":        &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"publishedAt": &graphql.Field{Type: graphql.NewNonNull(dateTimeType)},
	},
})

var createPostInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"body":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"tags":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})

// NewSchema binds the resolver to the executable GraphQL schema. The schema
// layer only unpacks coerced arguments into typed calls; all validation and
// store access lives in the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Posts(), nil
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					if post := r.Post(id); post != nil {
						return post, nil
					}
					return nil, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					if u := r.User(id); u != nil {
						return u, nil
					}
					return nil, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["input"].(map[string]interface{})
					input := model.CreatePostInput{}
					input.Title, _ = raw["title"].(string)
					input.Body, _ = raw["body"].(string)
					input.AuthorID, _ = raw["authorId"].(string)
					if rawTags, ok := raw["tags"].([]interface{}); ok {
						input.Tags = make([]string, 0, len(rawTags))
						for _, t := range rawTags {
							s, _ := t.(string)
							input.Tags = append(input.Tags, s)
						}
					}
					return r.CreatePost(input)
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return r.DeletePost(id), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
